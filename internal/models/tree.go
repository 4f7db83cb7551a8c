package models

// NodeType distinguishes files from directories in a fetched tree.
type NodeType string

const (
	NodeFile      NodeType = "file"
	NodeDirectory NodeType = "directory"
)

// TreeNode is one entry in a fetched repository tree. Tokens holds the
// node's weight: a file's own token count, or the sum of a directory's
// children.
type TreeNode struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Type     NodeType   `json:"type"`
	Children []TreeNode `json:"children,omitempty"`
	Tokens   int        `json:"tokens"`
}

// IsDir reports whether the node is a directory.
func (n TreeNode) IsDir() bool {
	return n.Type == NodeDirectory
}

// RepoEntry is a single entry returned by the upstream directory listing.
type RepoEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"` // "file" or "dir"
}

// RepoRef identifies a remote repository location.
type RepoRef struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
}
