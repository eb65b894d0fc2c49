package entity

// DirectoryFilter is a domain-level filter for searching the
// psychologist directory. Used by the directory service to avoid
// coupling with delivery DTOs.
type DirectoryFilter struct {
	Term       string           // Case-insensitive substring on name, bio, specialties
	Approach   TherapyApproach  // Empty means any approach
	State      string           // Exact match on state code
	City       string           // Exact match, only meaningful with State set
	Modalities []Modality       // OR semantics; empty means any modality
}

// Normalize drops inconsistent combinations. A city filter is only
// meaningful in the context of its state: if the selected city does not
// occur in the selected state among the given records, the city is
// cleared rather than silently matching nothing.
func (f *DirectoryFilter) Normalize(records []PsychologistProfile) {
	if f.City == "" {
		return
	}
	if f.State == "" {
		f.City = ""
		return
	}
	for _, rec := range records {
		if rec.State == f.State && rec.City == f.City {
			return
		}
	}
	f.City = ""
}
