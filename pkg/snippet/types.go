// Package snippet turns extracted declaration metadata into VSCode
// snippet records and manages the .code-snippets files they live in.
package snippet

// Snippet is a single VSCode snippet record. The field names are a
// compatibility contract with the editor and must not change.
type Snippet struct {
	Body        []string `json:"body"`
	Description string   `json:"description"`
	Prefix      []string `json:"prefix"`
	Scope       string   `json:"scope"`
}

// Collection maps snippet titles to records, mirroring the top-level
// object of a .code-snippets file.
type Collection map[string]Snippet

// Merge folds src into c. On title collision the src record wins, so
// regenerating a file replaces its stale entries in place.
func (c Collection) Merge(src Collection) {
	for title, s := range src {
		c[title] = s
	}
}
