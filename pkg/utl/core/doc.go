// Package core contains runner plumbing: worker configuration carried in a
// context and single-value future helpers (Once, FromChanFirstOrDefault). It
// holds no helper logic of its own; package stack builds on it.
package core
