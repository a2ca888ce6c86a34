package constvars

const (
	RegexEmail       = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateKey     = `^([1-9]|[12][0-9]|3[01])_([1-9]|1[0-2])_\d{4}$`
	RegexTimeLabel   = `^(1[0-2]|[1-9]):[0-5][0-9] (am|pm)$`
	RegexNumeric     = `^\d+$`
	RegexObjectIDHex = `^[a-fA-F0-9]{24}$`
)
