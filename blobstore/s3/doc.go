// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("glyphinfo/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	err = glyphinfo.SaveSnapshot(ctx, store, "glyphs.snapshot", data)
//
// Small blobs are written with a single PutObject carrying a CRC32C
// checksum; larger ones go through the multipart upload manager.
package s3
