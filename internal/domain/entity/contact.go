package entity

import "time"

// ContactService is the closed set of services a visitor can ask about.
type ContactService string

const (
	ServiceLogoDesign  ContactService = "Logo Design"
	ServiceBranding    ContactService = "Branding"
	ServiceSocialMedia ContactService = "Social Media Creatives"
	ServicePostersAds  ContactService = "Posters & Ads"
	ServiceOther       ContactService = "Other"
)

// ContactServices lists every valid contact service value.
func ContactServices() []ContactService {
	return []ContactService{
		ServiceLogoDesign,
		ServiceBranding,
		ServiceSocialMedia,
		ServicePostersAds,
		ServiceOther,
	}
}

func (s ContactService) Valid() bool {
	switch s {
	case ServiceLogoDesign, ServiceBranding, ServiceSocialMedia, ServicePostersAds, ServiceOther:
		return true
	}
	return false
}

// ContactStatus tracks the admin-side lifecycle of a message.
type ContactStatus string

const (
	StatusNew     ContactStatus = "new"
	StatusRead    ContactStatus = "read"
	StatusReplied ContactStatus = "replied"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied:
		return true
	}
	return false
}

// Contact is a message submitted through the public contact form.
// Phone is optional and empty when not provided.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Service   ContactService
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
}
