// Package services contains the dashboard operations of the VITAL client.
//
// DonorService prepares and posts listings, using image analysis to fill in
// the draft. ReceiverService browses listings, broadcasts requests and
// applies for items. Both talk to the user through an Alerter.
package services
