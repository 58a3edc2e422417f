// Package git adapts the git command-line surface used by ocwt.
//
// It never touches git's object store: every operation shells out to
// git and parses its output. All repository state is read fresh on
// each call; nothing is cached.
package git
