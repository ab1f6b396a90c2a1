package encoding

// Set binds one Encoder to each of the six payload-bearing fields of a
// frame. The codec threads a Set through every parse/emit call; when
// the caller passes the zero Set, TextSet is used.
type Set struct {
	Data             Encoder
	Metadata         Encoder
	DataMimeType     Encoder
	MetadataMimeType Encoder
	Message          Encoder
	ResumeToken      Encoder
}

// TextSet encodes every field as UTF-8. It is the codec's default.
var TextSet = Set{
	Data:             Text,
	Metadata:         Text,
	DataMimeType:     Text,
	MetadataMimeType: Text,
	Message:          Text,
	ResumeToken:      Text,
}

// BinarySet encodes data, metadata and resumeToken as raw byte blobs.
// The MIME-type fields and message are always UTF-8 regardless of set,
// since the wire format defines them as text.
var BinarySet = Set{
	Data:             Binary,
	Metadata:         Binary,
	DataMimeType:     Text,
	MetadataMimeType: Text,
	Message:          Text,
	ResumeToken:      Binary,
}

// CBORSet wraps data, metadata and resumeToken in a CBOR envelope. The
// MIME-type fields and message remain UTF-8.
var CBORSet = Set{
	Data:             CBOR,
	Metadata:         CBOR,
	DataMimeType:     Text,
	MetadataMimeType: Text,
	Message:          Text,
	ResumeToken:      CBOR,
}

// OrDefault returns s with every unset field filled in from TextSet,
// and returns TextSet itself when s is the zero Set. Frame codec entry
// points call this on the Set argument so callers may omit it.
func (s Set) OrDefault() Set {
	if s.Data == nil {
		s.Data = TextSet.Data
	}
	if s.Metadata == nil {
		s.Metadata = TextSet.Metadata
	}
	if s.DataMimeType == nil {
		s.DataMimeType = TextSet.DataMimeType
	}
	if s.MetadataMimeType == nil {
		s.MetadataMimeType = TextSet.MetadataMimeType
	}
	if s.Message == nil {
		s.Message = TextSet.Message
	}
	if s.ResumeToken == nil {
		s.ResumeToken = TextSet.ResumeToken
	}
	return s
}
