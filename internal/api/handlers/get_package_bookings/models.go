package get_package_bookings

import (
	"net/url"
	"time"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/internal/service/bookings/models"
)

// ToServiceRequest builds the service request from path and query parameters
func ToServiceRequest(packageID string, query url.Values) (*models.GetPackageBookingsRequest, error) {
	req := &models.GetPackageBookingsRequest{PackageID: packageID}

	if v := query.Get("yachtId"); v != "" {
		req.YachtID = &v
	}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
