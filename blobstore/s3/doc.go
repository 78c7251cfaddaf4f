// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("catalogs/gaia_dr3/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	cat, err := engine.Open(ctx, store)
//
// # Features
//
//   - Range reads for partial fetches of large listings
//   - Managed (multipart) uploads
//   - Automatic pagination for listing
//   - Configurable prefix, so one bucket can hold many catalogs
package s3
