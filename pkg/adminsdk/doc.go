// Package adminsdk is the Go client for the admin service.
//
// The SDKClient handles transport. A Session wraps an access token issued by
// the auth service and exposes the admin operations. The user list is cached
// on the Session and invalidated when a mutation succeeds, so repeated reads
// don't hit the server:
//
//	client := adminsdk.NewSDKClient("https://admin.example.com")
//	session := client.NewSession(accessToken)
//
//	users, _ := session.Users(ctx)        // fetches
//	users, _ = session.Users(ctx)         // served from cache
//	_ = session.InviteUser(ctx, adminsdk.InviteRequest{Email: "neu@example.com"})
//	users, _ = session.Users(ctx)         // fetches again (cache invalidated)
package adminsdk
