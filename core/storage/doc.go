// Package storage defines the object store abstraction used to publish
// generated images, plus the error taxonomy storage backends map their
// failures onto.
//
// Backends live under integration/storage; see the s3 package for Amazon S3
// and S3-compatible services.
//
//	obj, err := storage.PutFile(ctx, store, storage.JoinKey("qr", "site.png"), "/tmp/site.png")
//	if err != nil {
//		if errors.Is(err, storage.ErrAccessDenied) {
//			// fix credentials
//		}
//		return err
//	}
//	fmt.Println(obj.URL)
package storage
