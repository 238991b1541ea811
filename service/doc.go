// Package service exposes the assembled document over HTTP. Each GET
// triggers a fresh gather and assembly, so the document always reflects the
// current resource set; the response format follows the Accept header.
package service
