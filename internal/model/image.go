package model

// Image is an owned object-store resource. PublicID is the handle the store
// needs to delete the object; URL is what clients render. The handle is
// persisted next to the URL so deletion never has to be re-derived from
// URL parsing.
type Image struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"-" bson:"publicId"`
}
