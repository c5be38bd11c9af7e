// Package repository provides model for repository.
package repository

import (
	"os"

	"github.com/jiangxin/goconfig"
	log "github.com/sirupsen/logrus"
)

// Repository holds repository and error.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find repository in dir.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find repository in dir.
func OpenRepository(dir string) {
	// po-coverage runs fine outside a git worktree; check Opened() before use.
	_ = theRepository.Open(dir)
}

// Opened returns true if a repository was successfully opened (e.g. when
// running inside a git worktree). All commands can run without a repo;
// the repo only supplies the project root and po-coverage.* git config.
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// Err returns the error from the last OpenRepository call, or nil if open succeeded.
func Err() error {
	return theRepository.error
}

// WorkDirOrCwd returns the root of the worktree when a repository is opened,
// otherwise the current working directory. Configuration files are looked up
// relative to this directory.
func WorkDirOrCwd() string {
	if Opened() {
		return theRepository.repository.WorkDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// ChdirProjectRoot changes the working directory to the root of the worktree
// when running inside a git repository, so relative roots and catalog paths
// in flags and config resolve against the project root. Outside a repository
// paths resolve against the current directory.
func ChdirProjectRoot() {
	if !Opened() {
		return
	}
	workDir := theRepository.repository.WorkDir()
	if workDir == "" {
		return
	}
	if err := os.Chdir(workDir); err != nil {
		log.Warnf("fail to chdir to %s: %s", workDir, err)
	}
}

// Config is git config for the repository. Returns nil config when not
// running inside a repository; Get on it yields empty values.
func Config() goconfig.GitConfig {
	if !Opened() {
		return nil
	}
	return theRepository.repository.Config()
}
