package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the reference service
	and the pipeline components that
	read and write the processed-data tree.
*/
type Category string
