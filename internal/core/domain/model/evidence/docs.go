// Package evidence contains the stored photo entity and the closed union
// of things a photo can be linked to. Uploads arrive unlinked; workflow
// handlers bind them to audit actions, packages, or SKUs afterwards.
package evidence
