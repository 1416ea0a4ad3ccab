package postgres

import (
	"editorradar/internal/domain/entity"
	"editorradar/internal/infra/persistence/model"
)

func fromEditorLocationDomain(location *entity.EditorLocation) *model.EditorLocationModel {
	return &model.EditorLocationModel{
		EditorID:          location.EditorID,
		Latitude:          location.Location.Lat,
		Longitude:         location.Location.Lng,
		City:              location.City,
		State:             location.State,
		Country:           location.Country,
		CountryCode:       entity.NormalizeCountryCode(location.CountryCode),
		VisibilityEnabled: location.Visibility.Enabled,
		VisibilityLevel:   string(location.Visibility.Level),
		CreatedAt:         location.CreatedAt,
		UpdatedAt:         location.UpdatedAt,
	}
}

func toEditorLocationDomain(locationM *model.EditorLocationModel) *entity.EditorLocation {
	return &entity.EditorLocation{
		EditorID:    locationM.EditorID,
		Location:    entity.GeoPoint{Lat: locationM.Latitude, Lng: locationM.Longitude},
		City:        locationM.City,
		State:       locationM.State,
		Country:     locationM.Country,
		CountryCode: entity.NormalizeCountryCode(locationM.CountryCode),
		Visibility: entity.Visibility{
			Enabled: locationM.VisibilityEnabled,
			Level:   entity.VisibilityLevel(locationM.VisibilityLevel),
		},
		CreatedAt: locationM.CreatedAt,
		UpdatedAt: locationM.UpdatedAt,
	}
}

// toEditorCandidateDomain tolerates editors without a profile row; they get a zero summary.
func toEditorCandidateDomain(row *model.EditorCandidateRow) *entity.EditorCandidate {
	profile := entity.ProfileSummary{
		Skills: []string(row.Skills),
	}
	if row.DisplayName != nil {
		profile.DisplayName = *row.DisplayName
	}
	if row.AvatarURL != nil {
		profile.AvatarURL = *row.AvatarURL
	}
	if row.Rating != nil {
		profile.Rating = *row.Rating
	}
	if row.ReviewCount != nil {
		profile.ReviewCount = *row.ReviewCount
	}
	if row.HourlyRate != nil {
		profile.HourlyRate = *row.HourlyRate
	}
	if row.Available != nil {
		profile.Available = *row.Available
	}

	return &entity.EditorCandidate{
		Location: toEditorLocationDomain(&row.EditorLocationModel),
		Profile:  profile,
	}
}

func fromConsentDomain(record *entity.ConsentRecord) *model.ConsentRecordModel {
	consentM := &model.ConsentRecordModel{
		ID:           record.ID,
		UserID:       record.UserID,
		ConsentGiven: record.ConsentGiven,
		Timestamp:    record.Timestamp,
	}
	if record.LocationAtConsent != nil {
		lat, lng := record.LocationAtConsent.Lat, record.LocationAtConsent.Lng
		consentM.Latitude = &lat
		consentM.Longitude = &lng
	}

	return consentM
}

func toConsentDomain(consentM *model.ConsentRecordModel) *entity.ConsentRecord {
	record := &entity.ConsentRecord{
		ID:           consentM.ID,
		UserID:       consentM.UserID,
		ConsentGiven: consentM.ConsentGiven,
		Timestamp:    consentM.Timestamp,
	}
	if consentM.Latitude != nil && consentM.Longitude != nil {
		record.LocationAtConsent = &entity.GeoPoint{Lat: *consentM.Latitude, Lng: *consentM.Longitude}
	}

	return record
}
