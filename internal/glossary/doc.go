// Package glossary uploads glossary source files to Cloud Storage and
// registers, lists and deletes glossary resources in Cloud Translation.
//
// UploadAndCreate is not transactional: when registration fails after a
// successful upload, the uploaded object stays in the bucket.
package glossary
