package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Explosig Reference Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Explosig reference API!"
	SERVICE_DESCRIPTION ServiceInfo = "Static layout, chromosome and project-id reference data for the Explosig processed-data pipeline."

	SERVICE_ARTIFACT    ServiceInfo = "explosig-reference"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.explosig:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
