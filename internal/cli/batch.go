package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing"
	"gopkg.in/yaml.v3"

	"stackit.dev/scribe/internal/committer"
)

// batchFile is the YAML shape consumed by scribe apply
type batchFile struct {
	Message    string        `yaml:"message"`
	Branch     string        `yaml:"branch"`
	ExpectHead string        `yaml:"expect_head"`
	Changes    []batchChange `yaml:"changes"`
}

// batchChange is one change in a batch file. Content is a pointer so an
// absent key (inherit/empty-file semantics) differs from an explicit empty
// string. ContentFile reads content from a local file relative to the batch
// file's directory.
type batchChange struct {
	Action      string  `yaml:"action"`
	Path        string  `yaml:"path"`
	From        string  `yaml:"from"`
	Content     *string `yaml:"content"`
	ContentFile string  `yaml:"content_file"`
	Encoding    string  `yaml:"encoding"`
}

// parseBatch converts a batch file into a commit request
func parseBatch(data []byte, baseDir string) (committer.Request, error) {
	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return committer.Request{}, fmt.Errorf("failed to parse batch file: %w", err)
	}

	req := committer.Request{
		Message: file.Message,
		Branch:  file.Branch,
	}

	if file.ExpectHead != "" {
		if !plumbing.IsHash(file.ExpectHead) {
			return committer.Request{}, fmt.Errorf("invalid commit SHA %q in expect_head", file.ExpectHead)
		}
		req.ExpectedHead = plumbing.NewHash(file.ExpectHead)
	}

	for i, c := range file.Changes {
		action, err := committer.ParseAction(c.Action)
		if err != nil {
			return committer.Request{}, fmt.Errorf("change %d: %w", i, err)
		}

		change := committer.Change{
			Action:       action,
			Path:         c.Path,
			PreviousPath: c.From,
			Encoding:     c.Encoding,
		}
		switch {
		case c.ContentFile != "":
			content, err := os.ReadFile(filepath.Join(baseDir, c.ContentFile))
			if err != nil {
				return committer.Request{}, fmt.Errorf("change %d: failed to read content file: %w", i, err)
			}
			change.Content = content
			change.Encoding = ""
		case c.Content != nil:
			change.Content = []byte(*c.Content)
		}

		req.Changes = append(req.Changes, change)
	}

	return req, nil
}
