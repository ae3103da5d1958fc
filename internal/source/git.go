package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	gitobject "github.com/go-git/go-git/v5/plumbing/object"

	"github.com/gitql-labs/gitql/pkg/object"
)

// Git serves records derived from a git repository.
//
// Tables and fields:
//
//	commits   hash, title, message, name, email, time, repo
//	branches  name, is_head, is_remote, repo
//	tags      name, repo
//
// Every value is text: timestamps are RFC 3339 (which keeps lexicographic
// ordering chronological) and booleans are "true"/"false".
type Git struct {
	repo *git.Repository
	path string
}

// OpenGit opens the repository at path.
func OpenGit(path string) (*Git, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return &Git{repo: repo, path: path}, nil
}

// gitTables maps table names to their field sets, in rendering order.
var gitTables = map[string][]string{
	"commits":  {"hash", "title", "message", "name", "email", "time", "repo"},
	"branches": {"name", "is_head", "is_remote", "repo"},
	"tags":     {"name", "repo"},
}

// Tables lists the git table names.
func (g *Git) Tables() []string {
	return []string{"branches", "commits", "tags"}
}

// FieldsOf returns the field names of a git table.
func (g *Git) FieldsOf(table string) ([]string, bool) {
	fields, ok := gitTables[table]
	return fields, ok
}

// Fetch materializes the records of a git table.
func (g *Git) Fetch(ctx context.Context, table string, fields []string) ([]object.Record, error) {
	switch table {
	case "commits":
		return g.fetchCommits(ctx, fields)
	case "branches":
		return g.fetchBranches(ctx, fields)
	case "tags":
		return g.fetchTags(ctx, fields)
	default:
		return nil, fmt.Errorf("unknown table %q (expected one of: %s)", table, strings.Join(g.Tables(), ", "))
	}
}

func (g *Git) fetchCommits(ctx context.Context, fields []string) ([]object.Record, error) {
	iter, err := g.repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("read commit log: %w", err)
	}
	defer iter.Close()

	var records []object.Record
	err = iter.ForEach(func(c *gitobject.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		message := strings.TrimRight(c.Message, "\n")
		title, _, _ := strings.Cut(message, "\n")
		rec := object.Record{
			"hash":    c.Hash.String(),
			"title":   title,
			"message": message,
			"name":    c.Author.Name,
			"email":   c.Author.Email,
			"time":    c.Author.When.UTC().Format(time.RFC3339),
			"repo":    g.path,
		}
		records = append(records, restrict(rec, fields))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk commits: %w", err)
	}
	return records, nil
}

func (g *Git) fetchBranches(ctx context.Context, fields []string) ([]object.Record, error) {
	var headName plumbing.ReferenceName
	if head, err := g.repo.Head(); err == nil {
		headName = head.Name()
	}

	refs, err := g.repo.References()
	if err != nil {
		return nil, fmt.Errorf("read references: %w", err)
	}
	defer refs.Close()

	var records []object.Record
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := ref.Name()
		if !name.IsBranch() && !name.IsRemote() {
			return nil
		}
		rec := object.Record{
			"name":      name.Short(),
			"is_head":   strconv.FormatBool(name == headName),
			"is_remote": strconv.FormatBool(name.IsRemote()),
			"repo":      g.path,
		}
		records = append(records, restrict(rec, fields))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk branches: %w", err)
	}
	return records, nil
}

func (g *Git) fetchTags(ctx context.Context, fields []string) ([]object.Record, error) {
	tags, err := g.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}
	defer tags.Close()

	var records []object.Record
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := object.Record{
			"name": ref.Name().Short(),
			"repo": g.path,
		}
		records = append(records, restrict(rec, fields))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk tags: %w", err)
	}
	return records, nil
}
