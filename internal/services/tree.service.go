package services

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"promptstudio/internal/db"
	"promptstudio/internal/logging"
	"promptstudio/internal/models"
)

// Paths of the two database-backed groups spliced into the tree root.
const (
	dbGroupPrefix     = "db/"
	promptGroupPrefix = "prompts/"
)

// BuildEvent reports tree-build progress. Events for sibling files may be
// emitted from concurrent goroutines.
type BuildEvent struct {
	Type   string `json:"type"` // "file", "dir", "done", "error"
	Path   string `json:"path,omitempty"`
	Tokens int    `json:"tokens,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ProgressFunc receives build events. A nil ProgressFunc disables reporting.
type ProgressFunc func(BuildEvent)

// TreeBuilder fetches a remote repository tree and aggregates token weights
// bottom-up. Each build is independent; nothing is cached across calls.
type TreeBuilder struct {
	source  RepoSource
	counter Counter
	extras  map[string]string

	listFiles   func(context.Context) ([]models.FileRecord, error)
	listPrompts func(context.Context) ([]models.PromptRecord, error)
}

var treeBuilder *TreeBuilder

// InitTreeBuilder initializes the shared tree builder.
func InitTreeBuilder(source RepoSource, counter Counter, extras map[string]string) *TreeBuilder {
	treeBuilder = NewTreeBuilder(source, counter, extras)
	return treeBuilder
}

// GetTreeBuilder returns the shared tree builder.
func GetTreeBuilder() *TreeBuilder {
	return treeBuilder
}

// NewTreeBuilder creates a builder over the given source and counter.
// extras maps statically bundled file paths to their contents.
func NewTreeBuilder(source RepoSource, counter Counter, extras map[string]string) *TreeBuilder {
	if counter == nil {
		counter = WhitespaceCounter{}
	}
	return &TreeBuilder{
		source:      source,
		counter:     counter,
		extras:      extras,
		listFiles:   db.ListFiles,
		listPrompts: db.ListPrompts,
	}
}

// Build fetches the tree rooted at path. A directory listing failure is
// fatal to the whole build; a single file's content fetch failure degrades
// that file's weight to zero. At the root (path == "") the statically
// bundled extras and the database record groups are appended after the
// fetched entries.
func (b *TreeBuilder) Build(ctx context.Context, ref models.RepoRef, path string, progress ProgressFunc) ([]models.TreeNode, error) {
	nodes, err := b.fetchDir(ctx, ref, path, progress)
	if err != nil {
		emit(progress, BuildEvent{Type: "error", Path: path, Error: err.Error()})
		return nil, err
	}

	if path == "" {
		nodes = append(nodes, b.extraNodes()...)
		nodes = append(nodes, b.recordNodes(ctx)...)
	}

	emit(progress, BuildEvent{Type: "done", Tokens: sumWeights(nodes)})
	return nodes, nil
}

func (b *TreeBuilder) fetchDir(ctx context.Context, ref models.RepoRef, path string, progress ProgressFunc) ([]models.TreeNode, error) {
	entries, err := b.source.ListDirectory(ctx, ref, path)
	if err != nil {
		return nil, err
	}

	// Siblings are fetched concurrently; the plain errgroup keeps every
	// fetch running to completion and the result slice preserves the
	// upstream listing order.
	nodes := make([]models.TreeNode, len(entries))
	var group errgroup.Group

	for i, entry := range entries {
		i, entry := i, entry
		group.Go(func() error {
			if entry.Type == "dir" {
				children, err := b.fetchDir(ctx, ref, entry.Path, progress)
				if err != nil {
					return err
				}
				nodes[i] = models.TreeNode{
					Name:     entry.Name,
					Path:     entry.Path,
					Type:     models.NodeDirectory,
					Children: children,
					Tokens:   sumWeights(children),
				}
				emit(progress, BuildEvent{Type: "dir", Path: entry.Path, Tokens: nodes[i].Tokens})
				return nil
			}

			// Symlinks and submodules carry no content of their own;
			// they become zero-weight file nodes without a fetch.
			tokens := 0
			if entry.Type == "file" {
				content, err := b.source.FileContent(ctx, ref, entry.Path)
				if err != nil {
					logging.L().Warn("file fetch failed, keeping zero weight",
						zap.String("path", entry.Path), zap.Error(err))
				} else {
					tokens = b.counter.Count(content)
				}
			}

			nodes[i] = models.TreeNode{
				Name:   entry.Name,
				Path:   entry.Path,
				Type:   models.NodeFile,
				Tokens: tokens,
			}
			emit(progress, BuildEvent{Type: "file", Path: entry.Path, Tokens: tokens})
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// extraNodes converts the statically bundled files into leaf nodes, in
// path order so repeated builds stay identical.
func (b *TreeBuilder) extraNodes() []models.TreeNode {
	paths := make([]string, 0, len(b.extras))
	for path := range b.extras {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	nodes := make([]models.TreeNode, 0, len(paths))
	for _, path := range paths {
		nodes = append(nodes, models.TreeNode{
			Name:   baseName(path),
			Path:   path,
			Type:   models.NodeFile,
			Tokens: b.counter.Count(b.extras[path]),
		})
	}
	return nodes
}

// recordNodes reads the files and prompts tables. A failed read degrades
// to an empty group for that table only.
func (b *TreeBuilder) recordNodes(ctx context.Context) []models.TreeNode {
	var nodes []models.TreeNode

	files, err := b.listFiles(ctx)
	if err != nil {
		logging.L().Warn("files table unavailable, skipping db group", zap.Error(err))
	}
	for _, file := range files {
		nodes = append(nodes, models.TreeNode{
			Name:   baseName(file.Path),
			Path:   dbGroupPrefix + file.Path,
			Type:   models.NodeFile,
			Tokens: b.counter.Count(file.Content),
		})
	}

	prompts, err := b.listPrompts(ctx)
	if err != nil {
		logging.L().Warn("prompts table unavailable, skipping prompts group", zap.Error(err))
	}
	for _, prompt := range prompts {
		nodes = append(nodes, models.TreeNode{
			Name:   prompt.Filename,
			Path:   promptGroupPrefix + prompt.Filename,
			Type:   models.NodeFile,
			Tokens: b.counter.Count(prompt.Content),
		})
	}

	return nodes
}

func sumWeights(nodes []models.TreeNode) int {
	total := 0
	for _, node := range nodes {
		total += node.Tokens
	}
	return total
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

func emit(progress ProgressFunc, event BuildEvent) {
	if progress != nil {
		progress(event)
	}
}
