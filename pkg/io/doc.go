// Package io reads site documents and writes rendered wireframes.
//
// # Input
//
// A document lists the pages of a site:
//
//	{
//	  "pages": [
//	    {
//	      "page": "About",
//	      "slug": "/about",
//	      "layout": {
//	        "h1": "About us",
//	        "sections": [
//	          {"id": "story", "type": "content", "label": "Our story",
//	           "components": [{"type": "list", "items": ["Founded 2009", "12 staff"]}]}
//	        ]
//	      }
//	    }
//	  ]
//	}
//
// The same structure may be written as YAML. [ImportDocument] picks the
// decoder from the file extension (.json, .yaml, .yml); [ReadDocument]
// decodes from any reader in an explicit [Format].
//
// Decoding is lenient inside pages (unknown kinds, scalar lists, missing
// fields) but strict at the top: a missing file, undecodable content or a
// document without pages is an error, since there would be nothing to
// render.
//
// # Sitemap
//
// [OptionalSitemap] reads the navigation source. A missing sitemap is not an
// error; callers fall back to page names.
//
// # Output
//
// [OutputNames] derives one file name per page from [SafeFilename], maps
// the root page to "home" and suffixes duplicates ("about", "about-2").
// [WriteArtifacts] writes the rendered SVGs into a directory.
package io
