package res

// AboutContent is the default Markdown blurb shown under the product name.
// Products override it with the description in their config file.
const AboutContent = `Documentation bundled with this application.

**Included:**
- Change log
- Read me
- License terms
`
