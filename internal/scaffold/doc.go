// Package scaffold creates dated post and draft files for a static site.
// It powers the "postkit new" command: building the file name from the
// invocation date and the user's words, resolving _posts or _drafts under
// the site root, and writing the front-matter block into place.
package scaffold
