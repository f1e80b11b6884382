// Package jackalpin provides a Go client for JackalPin, the pinning
// service for the Jackal Protocol storage network.
//
// Basic usage:
//
//	client, err := jackalpin.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Upload a file
//	result, err := client.UploadFileFromPath(ctx, "photo.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("CID:", result.CID)
//
//	// Pin existing network content
//	if err := client.PinByCID(ctx, result.CID); err != nil {
//	    log.Fatal(err)
//	}
//
// Failed calls return *Error values classified by kind; check for
// specific conditions with errors.Is:
//
//	if errors.Is(err, jackalpin.ErrNotFound) {
//	    // Handle missing resource
//	}
package jackalpin
