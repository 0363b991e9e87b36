// Package cli implements the interactive VITAL client.
//
// The prompt shows the current screen. Commands available on each screen:
//
//	Landing:
//	  enter                 start signing in
//	  exit | quit           leave the program
//
//	Authenticating:
//	  signin | signup       enter credentials and receive a code
//	  google                federated sign-in with the selected role
//	  method email|phone    choose the identifier kind
//	  role donor|receiver   choose the dashboard
//	  verify                enter the received code
//	  resend                send a fresh code
//	  back                  restart the flow
//
//	Donor dashboard:
//	  post                  list a donation (optionally from a photo)
//	  list                  show the catalog
//	  logout
//
//	Receiver dashboard:
//	  list                  show the catalog
//	  search <term>         filter by title, location or description
//	  request               broadcast a custom request
//	  apply <id>            apply for an item
//	  map <id>              print a map link for the item's location
//	  logout
package cli
