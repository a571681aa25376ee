// Package services provides the Spotify Web API client used by the capsule engine.
//
// The package centers on the [Service] interface, which names the remote
// operations a refresh run consumes:
//
//   - current user identity
//   - paginated enumeration of the user's playlists
//   - exact-name playlist lookup
//   - playlist creation
//   - full replacement of a playlist's track list
//   - appending tracks (available, unused by the main refresh flow)
//
// [SpotifyService] implements the interface over net/http with bearer-token
// authentication, JSON bodies, and client-side rate limiting. Pagination is
// exposed as a [PlaylistPager], a lazy sequential producer that fetches
// pages until the API stops signaling a next page; creating a new pager
// restarts the traversal from scratch.
//
// All methods take a [context.Context]; every remote call blocks until it
// completes or fails. Errors from the API wrap [shared.ErrRemoteService]
// and are never retried here.
package services
