package dashboard

import "spacex-dashboard/internal/model"

// Filter returns the records matching both the site selection and the
// inclusive payload range, in dataset order. The result is never nil.
func Filter(records []model.LaunchRecord, sel model.SiteSelection, rng model.PayloadRange) []model.LaunchRecord {
	out := make([]model.LaunchRecord, 0)
	if !rng.Valid() {
		return out
	}
	for _, rec := range records {
		if sel.Matches(rec.LaunchSite) && rng.Contains(rec.PayloadMassKg) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterBySite returns the records launched from the selected site.
func FilterBySite(records []model.LaunchRecord, sel model.SiteSelection) []model.LaunchRecord {
	if sel.IsAll() {
		return records
	}
	out := make([]model.LaunchRecord, 0)
	for _, rec := range records {
		if sel.Matches(rec.LaunchSite) {
			out = append(out, rec)
		}
	}
	return out
}
