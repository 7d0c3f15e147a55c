// Package assets provides the CSS styles and HTML page template used to
// wrap a rendered README into a standalone page.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - go:embed styles and templates
//	    ├── FilesystemLoader  - custom directory on disk
//	    └── AssetResolver     - custom first, embedded fallback
//
// A custom directory may override any single asset; whatever it lacks is
// served from the embedded copy.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// Built-in styles are "default" (sidebar layout, light and dark through
// prefers-color-scheme) and "minimal". The built-in template is "page".
//
// # Security
//
// Asset names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
