// Package minio implements blobstore.BlobStore with the MinIO client, for
// MinIO and other S3-compatible servers such as Ceph or Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "glyphs", "snapshots/")
//	g, err := glyphinfo.LoadSnapshot(ctx, store, "current.snapshot")
//
// NewFromEnv builds the client from MINIO_ACCESS_KEY and MINIO_SECRET_KEY.
package minio
