package util

func GetAppName() string {
	return "FontCatalog"
}
