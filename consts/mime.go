package consts

const (
	MIMEJSON = "application/json"
	MIMEIcon = "image/x-icon"
)
