package model

// PrivacyStatus is the provider-defined visibility tier of a video or
// playlist. It doubles as the catalog filter.
type PrivacyStatus string

const (
	PrivacyUnlisted PrivacyStatus = "unlisted"
	PrivacyPrivate  PrivacyStatus = "private"
	PrivacyPublic   PrivacyStatus = "public"
)

// Valid reports whether the value is one of the provider's privacy tiers.
func (p PrivacyStatus) Valid() bool {
	switch p {
	case PrivacyUnlisted, PrivacyPrivate, PrivacyPublic:
		return true
	}
	return false
}

// FieldConfig carries the per-field-instance settings owned by the external
// field-definition framework. It arrives with each request and is never
// mutated here.
type FieldConfig struct {
	CategoryID     int           `json:"category_id"`
	Tags           []string      `json:"tags"`
	PrivacyStatus  PrivacyStatus `json:"privacy_status"`
	MadeForKids    bool          `json:"made_for_kids"`
	AllowUpload    bool          `json:"allow_upload"`
	AllowSelect    bool          `json:"allow_select"`
	SyncOnUpdate   bool          `json:"sync_on_update"`
	DeleteOnRemove bool          `json:"delete_on_remove"`
}
