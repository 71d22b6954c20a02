// Package resolve turns pasted text (a direct file link, a model page URL, or
// a share string carrying a model id) into a downloadable GLB file URL.
//
// Strategies run in order and the first hit wins: direct link, scrape of the
// pasted page, scrape of the model page derived from an embedded id. A failed
// fetch aborts the whole resolution; only "strategy does not apply" falls
// through to the next one.
package resolve
