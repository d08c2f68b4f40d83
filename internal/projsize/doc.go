// Package projsize scans a root directory of project folders and reports
// disk usage for a configured set of target subfolder names, adjusting
// nested targets so that space is never counted twice.
//
// Folder names are matched case-insensitively with whitespace and
// punctuation stripped, so "Data In", "data-in" and "DATA_IN" all match the
// same target. Sizes are computed with fastwalk; symbolic links are not
// followed.
package projsize
