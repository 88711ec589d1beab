// Package pipeline runs the four dubbing stages in order: acquire the
// source audio, transcribe it, translate the transcript and synthesize
// speech from the translation. Each stage consumes the previous stage's
// output and a failure stops the run at that stage.
package pipeline
