package contentstate

// EntityType identifies what an entity annotates. Types outside the known
// set are preserved; the exporter renders their runs unwrapped.
type EntityType string

// Known entity types.
const (
	EntityLink  EntityType = "LINK"
	EntityImage EntityType = "IMAGE"
)

// Entity is an out-of-band annotation attached to a character range through
// an opaque key. Data holds the instance's fields (url, src, alt, ...);
// absent fields are simply missing from the map.
type Entity struct {
	Type EntityType
	Data map[string]string
}
