package assets

import "errors"

var _ AssetLoader = (*AssetResolver)(nil)

// AssetResolver looks assets up in a user directory first and in the
// embedded set second. Only a missing asset falls through; validation and
// read errors from the user directory are returned as is.
type AssetResolver struct {
	chain []AssetLoader
}

// NewAssetResolver returns a resolver over the embedded assets, preceded by
// customBasePath when it is non-empty.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	if customBasePath == "" {
		return &AssetResolver{chain: []AssetLoader{NewEmbeddedLoader()}}, nil
	}
	user, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	return &AssetResolver{chain: []AssetLoader{user, NewEmbeddedLoader()}}, nil
}

// HasCustomLoader reports whether a user asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.chain) > 1
}

// LoadStyle returns the stylesheet registered under name.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate returns the page template registered under name.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.chain {
		var content string
		if content, err = load(l); err == nil {
			return content, nil
		}
		if !isNotFoundError(err) {
			return "", err
		}
	}
	return "", err
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}
