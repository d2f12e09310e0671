// Package fontcatalog turns a directory of font files into catalog entries for
// the editor's font picker.
//
// Names are derived from filenames only; font files are never opened. A file
// such as "Open_Sans-Bold.ttf" becomes the label "Open Sans" and the value
// "font-custom-open-sans-bold".
package fontcatalog
