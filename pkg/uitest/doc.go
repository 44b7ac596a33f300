// Package uitest provides test helpers for code built on genui.
//
// # Recording Delegate
//
// Recorder implements the interaction delegate and keeps every notification
// in order:
//
//	rec := uitest.NewRecorder()
//	d := interaction.NewDispatcher(rec)
//	...
//	if got := rec.Values("accept"); len(got) != 1 {
//	    t.Errorf("expected one value change, got %v", got)
//	}
//
// # Finders
//
// Finders locate live nodes by identifier, kind, or text:
//
//	input := uitest.Find(root, uitest.ByID("email")).First().(*view.TextInputNode)
//
// # Error Capture
//
// CaptureErrors installs a recording error handler for the duration of a test:
//
//	errs := uitest.CaptureErrors(t)
//	...
//	if errs.Count(errors.KindResource) != 1 { ... }
//
// # Snapshots
//
// Snapshots of a view tree can be compared against golden files:
//
//	uitest.MatchesFile(t, view.Snap(root), "testdata/form.snapshot.json")
//
// Update golden files with:
//
//	GENUI_UPDATE_SNAPSHOTS=1 go test ./...
package uitest
