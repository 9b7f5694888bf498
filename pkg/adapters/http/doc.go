/*
Package http exposes the build workbench as a JSON API.

Every build is addressed by id under /builds. Mutations always answer
200 with the applied flag, the denial reason and the updated read model;
an ineligible action is reported, never an HTTP error. Applied mutations
are also pushed as allocation diffs to Server-Sent Events subscribers of
/builds/{id}/events.
*/
package http
