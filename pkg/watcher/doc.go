// Package watcher reports changes to a set of files, debounced.
//
// The directories holding the files are watched rather than the files
// themselves, so editors that save by renaming a temporary file over the
// original are still noticed. Bursts of events within the debounce interval
// are delivered as one batch.
//
//	w, err := watcher.New(watcher.WithDebounce(200 * time.Millisecond))
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Add("model.mdu", "structures.ini"); err != nil {
//		return err
//	}
//	return w.Run(ctx, func(changed []string) {
//		// validate changed files again
//	})
package watcher
