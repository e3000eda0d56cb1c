package domain

// FileChange pairs raw file content with its destination path inside the
// repository. Content is treated as opaque bytes; transport encoding is the
// repository layer's concern.

type FileChange struct {
	Path    string
	Content []byte
}

// BlobRef pairs the SHA of an uploaded blob with the path it should occupy in
// a tree. It is only ever used as input to tree creation.
type BlobRef struct {
	SHA  string
	Path string
}
