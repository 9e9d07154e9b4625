package feeds

import "encoding/xml"

// RSS 2.0 document with the iTunes podcast extensions most
// directories require.
type RSS struct {
	XMLName      xml.Name `xml:"rss"`
	Version      string   `xml:"version,attr"`
	ItunesXMLNS  string   `xml:"xmlns:itunes,attr"`
	ContentXMLNS string   `xml:"xmlns:content,attr"`
	Channel      Channel  `xml:"channel"`
}

type Channel struct {
	Title          string       `xml:"title"`
	Link           string       `xml:"link"`
	Description    string       `xml:"description"`
	Language       string       `xml:"language,omitempty"`
	Copyright      string       `xml:"copyright,omitempty"`
	LastBuildDate  string       `xml:"lastBuildDate,omitempty"`
	ItunesAuthor   string       `xml:"itunes:author,omitempty"`
	ItunesExplicit string       `xml:"itunes:explicit"`
	ItunesImage    *ItunesImage `xml:"itunes:image,omitempty"`
	ItunesOwner    *ItunesOwner `xml:"itunes:owner,omitempty"`
	Category       string       `xml:"itunes:category>text,omitempty"`
	Items          []Item       `xml:"item"`
}

type ItunesImage struct {
	Href string `xml:"href,attr"`
}

type ItunesOwner struct {
	Name  string `xml:"itunes:name,omitempty"`
	Email string `xml:"itunes:email,omitempty"`
}

type Item struct {
	Title          string     `xml:"title"`
	GUID           GUID       `xml:"guid"`
	Description    string     `xml:"description,omitempty"`
	PubDate        string     `xml:"pubDate,omitempty"`
	Enclosure      *Enclosure `xml:"enclosure,omitempty"`
	ItunesDuration string     `xml:"itunes:duration,omitempty"`
	ItunesExplicit string     `xml:"itunes:explicit"`
}

type GUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink string `xml:"isPermaLink,attr"`
}

type Enclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length int64  `xml:"length,attr"`
}

func explicitTag(explicit bool) string {
	if explicit {
		return "yes"
	}
	return "no"
}
