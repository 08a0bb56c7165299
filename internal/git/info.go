// Package git reports where a template file comes from when it lives in a
// Git repository: the current commit, branch and tags, and whether the file
// itself differs from what is committed. Repositories are only read
// locally.
package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// SourceInfo holds provenance information for one template file
type SourceInfo struct {
	// Path is the file path relative to the repository root, slash-separated
	Path string
	// CommitHash is the current HEAD commit hash
	CommitHash string
	// Branch is the current branch name
	Branch string
	// Tags is a list of tags pointing to the current commit
	Tags []string
	// Modified indicates the file has staged or unstaged changes
	Modified bool
	// Untracked indicates the file has never been committed
	Untracked bool
}

// GetSourceInfo opens the repository containing path, searching parent
// directories for .git, and reports the file's provenance.
func GetSourceInfo(path string) (*SourceInfo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(absPath), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to find a Git repository that path %q belongs to: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree for %q: %w", path, err)
	}

	relPath, err := filepath.Rel(worktree.Filesystem.Root(), absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %q inside repository: %w", path, err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference for %q: %w", path, err)
	}

	tags, err := tagsAt(repo, headRef.Hash())
	if err != nil {
		return nil, err
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status for %q: %w", path, err)
	}

	info := &SourceInfo{
		Path:       filepath.ToSlash(relPath),
		CommitHash: headRef.Hash().String(),
		Branch:     headRef.Name().Short(),
		Tags:       tags,
	}

	// Clean tracked files are absent from the status map.
	if fileStatus, ok := status[info.Path]; ok {
		info.Untracked = fileStatus.Worktree == git.Untracked
		info.Modified = !info.Untracked &&
			(fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified)
	}

	return info, nil
}

// tagsAt finds all tags pointing to the given commit
func tagsAt(repo *git.Repository, commit plumbing.Hash) ([]string, error) {
	var tags []string
	tagRefs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	err = tagRefs.ForEach(func(ref *plumbing.Reference) error {
		revHash, err := repo.ResolveRevision(plumbing.Revision(ref.Name()))
		if err != nil {
			return fmt.Errorf("failed to get tag commit object for tag %q: %w", ref.Name().Short(), err)
		}
		if *revHash == commit {
			tags = append(tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over tags: %w", err)
	}
	return tags, nil
}
