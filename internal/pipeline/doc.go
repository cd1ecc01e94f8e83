// Package pipeline is the scaffolder's host contract. A project is created by
// folding an ordered list of named Actions over a (Structure, *Options) pair:
// early actions resolve options, later ones describe the file tree, and
// create_structure writes it to disk. Extensions insert their own actions
// relative to the built-in ones with Register.
//
// Every write goes through a FileOp, and every FileOp honours
// Options.Pretend by reporting instead of touching the filesystem.
package pipeline
