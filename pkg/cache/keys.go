package cache

// keyVersion changes whenever rendering output changes for the same inputs.
const keyVersion = "v1"

// ArtifactKeyOpts are the output options that shape a rendered artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Scale     float64 `json:"scale,omitempty"`
	EmbedFont bool    `json:"embed_font,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered output of a sketch. settingsHash
	// is the Hash of the encoded effective settings.
	ArtifactKey(kind, token, settingsHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(kind, token, settingsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+keyVersion+":"+kind, token, settingsHash, opts)
}
