// encoding/doc.go
package encoding

/*
Package encoding provides a reusable byte-buffer pool for the envelope
readers, sized in three tiers (64B/1KiB/8KiB) so a capture replay with
a steady frame-size distribution settles into a handful of long-lived
buffers instead of allocating one per frame.
*/
