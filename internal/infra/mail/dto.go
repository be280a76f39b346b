package mail

type LeadEmailData struct {
	Name       string
	Email      string
	Phone      string
	Lang       string
	Source     string
	Note       string
	ReceivedAt string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}
