// Package attachments defines the attachment entity and its field catalog.
//
// Attachments are the files (sources, binaries, clearing reports) linked to a
// release, component or project document. They are identified by their
// content id. The content id and the upload history are bookkeeping and are
// excluded from comparisons.
package attachments
