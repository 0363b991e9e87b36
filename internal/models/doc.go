// Package models defines the donation catalog and session types shared by the
// auth machine, the catalog store, the analysis client and the dashboards.
package models
