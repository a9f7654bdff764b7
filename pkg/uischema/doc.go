// Package uischema loads optional UI overlays (YAML or JSON) that adjust how a
// form is presented: title, subtitle, intro text, submit label and per-field
// labels, placeholders and descriptions. Overlays never change which fields
// exist or how they validate.
//
// A document looks like:
//
//	forms:
//	  registration:
//	    form:
//	      title: Create your account
//	      description: "<p>All fields except <em>phone code</em> are required.</p>"
//	    fields:
//	      pan:
//	        label: PAN
//	        placeholder: ABCDE1234F
//
// Rich text (subtitle, description) is sanitised with a user generated
// content policy before it reaches a renderer.
package uischema
