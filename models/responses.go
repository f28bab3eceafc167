package models

// DecodeResponse is returned after a successful decode.
type DecodeResponse struct {
	// Status is StatusDecrypted.
	Status string `json:"status"`

	// Text is the recovered message.
	Text string `json:"text"`

	// Length is Text length in characters.
	Length int `json:"length"`
}

// ArtifactList is a page of artifact metadata.
type ArtifactList struct {
	Artifacts []Artifact `json:"artifacts"`

	// Length is the number of entries in Artifacts.
	Length int `json:"length"`
}

// ServerInfo describes how a server encodes. Clients use it to show the
// encryption before sending a message.
type ServerInfo struct {
	Version string `json:"version"`

	// Encryption is the cipher policy label stored on every artifact.
	Encryption string `json:"encryption"`

	// Authenticated is false for the XOR policy, which cannot detect a wrong
	// password.
	Authenticated bool `json:"authenticated"`

	DefaultWidth  int `json:"default_width"`
	DefaultHeight int `json:"default_height"`
	MaxSide       int `json:"max_side"`
}
