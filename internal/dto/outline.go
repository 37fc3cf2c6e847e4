package dto

// OutlineItem is the on-disk shape of one outline entry.
// It uses "mapstructure" tags so YAML and JSON documents decode through the
// same generic map.
type OutlineItem struct {
	ID        string        `json:"id" mapstructure:"id"`
	Name      string        `json:"name" mapstructure:"name"`
	Note      string        `json:"note" mapstructure:"note"`
	Completed bool          `json:"completed" mapstructure:"completed"`
	Tags      []string      `json:"tags" mapstructure:"tags"`
	Children  []OutlineItem `json:"children" mapstructure:"children"`
}
