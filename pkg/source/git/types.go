package git

import "time"

// CommitInfo contains metadata about a Git commit.
type CommitInfo struct {
	SHA        string    `json:"sha" yaml:"sha"`
	Author     string    `json:"author" yaml:"author"`
	Email      string    `json:"email" yaml:"email"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	Message    string    `json:"message" yaml:"message"`
	Branch     string    `json:"branch,omitempty" yaml:"branch,omitempty"`
	Repository string    `json:"repository" yaml:"repository"`
}

// ShortSHA returns the first 8 characters of the commit SHA.
func (c *CommitInfo) ShortSHA() string {
	return shortSHA(c.SHA)
}

// PullResult contains the result of a pull operation.
type PullResult struct {
	FromSHA string
	ToSHA   string

	// ChangedFiles are repository-relative paths added, modified or
	// deleted between FromSHA and ToSHA.
	ChangedFiles []string
	HadChanges   bool
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
