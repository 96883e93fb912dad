package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"

	"stackit.dev/scribe/internal/committer"
	"stackit.dev/scribe/internal/config"
	"stackit.dev/scribe/internal/gitstore"
	"stackit.dev/scribe/internal/lock"
	"stackit.dev/scribe/internal/logging"
)

// app carries the persistent flags and the process-wide lock manager
type app struct {
	repoPath string
	logLevel string
	locks    *lock.Manager
}

// openStore opens the repository and its configuration without locking.
// Read-only commands use this directly.
func (a *app) openStore() (*gitstore.Store, *config.Config, error) {
	root, err := filepath.Abs(a.repoPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve repository path: %w", err)
	}

	store, err := gitstore.Open(root)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, nil, err
	}

	return store, cfg, nil
}

// session is the state one commit-producing command runs with. It holds the
// repository lock from newSession until close.
type session struct {
	store     *gitstore.Store
	cfg       *config.Config
	log       *logging.Logger
	committer *committer.Committer
	unlock    func()
}

func (a *app) newSession() (*session, error) {
	log, err := logging.NewLogger(a.logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	root, err := filepath.Abs(a.repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository path: %w", err)
	}

	unlock := a.locks.Acquire(root)

	store, err := gitstore.Open(root)
	if err != nil {
		unlock()
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		unlock()
		return nil, err
	}

	return &session{
		store: store,
		cfg:   cfg,
		log:   log,
		committer: committer.NewWithOptions(store, committer.Options{
			DefaultBranch: cfg.Branch(),
		}),
		unlock: unlock,
	}, nil
}

func (s *session) close() {
	s.unlock()
	_ = s.log.Sync()
}

// commitFlags are the flags shared by every commit-producing command
type commitFlags struct {
	message     string
	branch      string
	authorName  string
	authorEmail string
	expectHead  string
	noUpdateRef bool
}

func addCommitFlags(cmd *cobra.Command, flags *commitFlags) {
	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Commit message")
	cmd.Flags().StringVarP(&flags.branch, "branch", "b", "", "Branch to commit to (defaults to the configured default branch)")
	cmd.Flags().StringVar(&flags.authorName, "author", "", "Author name")
	cmd.Flags().StringVar(&flags.authorEmail, "email", "", "Author email")
	cmd.Flags().StringVar(&flags.expectHead, "expect-head", "", "Fail unless the branch tip still equals this commit SHA")
	cmd.Flags().BoolVar(&flags.noUpdateRef, "no-update-ref", false, "Create the commit without advancing the branch reference")
}

// identity resolves the author identity from flags, then configuration,
// then a fixed fallback
func (f *commitFlags) identity(cfg *config.Config) committer.Identity {
	id := committer.Identity{Name: f.authorName, Email: f.authorEmail}
	if id.Name == "" {
		id.Name = cfg.Author.Name
	}
	if id.Email == "" {
		id.Email = cfg.Author.Email
	}
	if id.Name == "" {
		id.Name = "scribe"
	}
	if id.Email == "" {
		id.Email = "scribe@localhost"
	}
	return id
}

func (f *commitFlags) expectedHead() (plumbing.Hash, error) {
	if f.expectHead == "" {
		return plumbing.ZeroHash, nil
	}
	if !plumbing.IsHash(f.expectHead) {
		return plumbing.ZeroHash, fmt.Errorf("invalid commit SHA %q", f.expectHead)
	}
	return plumbing.NewHash(f.expectHead), nil
}

// fileRequest builds the shared part of a single-file request
func (f *commitFlags) fileRequest(cfg *config.Config) (committer.FileRequest, error) {
	head, err := f.expectedHead()
	if err != nil {
		return committer.FileRequest{}, err
	}
	return committer.FileRequest{
		Message:       f.message,
		Branch:        f.branch,
		Author:        f.identity(cfg),
		ExpectedHead:  head,
		SkipRefUpdate: f.noUpdateRef,
	}, nil
}

// contentFlags supply file content to create and update commands
type contentFlags struct {
	content     string
	contentFile string
	base64      bool
}

func addContentFlags(cmd *cobra.Command, flags *contentFlags) {
	cmd.Flags().StringVar(&flags.content, "content", "", "File content")
	cmd.Flags().StringVarP(&flags.contentFile, "file", "f", "", "Read file content from this local file (- for stdin)")
	cmd.Flags().BoolVar(&flags.base64, "base64", false, "Treat --content as base64 encoded")
}

// bytes returns the supplied content and its encoding. A nil result means no
// content was given at all, which lets rename-style inheritance kick in.
func (f *contentFlags) bytes(cmd *cobra.Command) ([]byte, string, error) {
	switch {
	case f.contentFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, "", nil
	case f.contentFile != "":
		data, err := os.ReadFile(f.contentFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", f.contentFile, err)
		}
		return data, "", nil
	case cmd.Flags().Changed("content"):
		encoding := ""
		if f.base64 {
			encoding = committer.EncodingBase64
		}
		return []byte(f.content), encoding, nil
	}
	return nil, "", nil
}
