package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for seqstat text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "file\tformat\trecords\tbases\tmin_len\tmax_len\tmean_len\tgc_fraction\tn\tmean_qual"

// IndexTSVHeader is the header row for seqindex text output.
const IndexTSVHeader = "index\tid"
