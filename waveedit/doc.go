/*
Package waveedit contains the editing engine for hand drawn waveforms.

The Model holds a single wavedraw.Wave, its undo history and the state of the
drawing tools. The GUI does not modify the wave directly; it feeds normalized
pointer and key events to Model.HandleEvent and triggers the other operations
through the Action, Bool and Int handles returned by the model, e.g.
model.History().Undo().Do() or model.FlipVertically(true).Do().

Every change is pushed to a Document: PublishWave on each intermediate step of
a gesture, so the host can preview it, and CommitWave whenever a checkpoint is
stored in the history. The engine never asks the Document to undo; it keeps
its own history and only pushes the resulting states outward.

Visible state is pushed to a Surface: per-sample heights (only the samples
that changed since the previous render) and an Overlay describing the
selection.
*/
package waveedit
